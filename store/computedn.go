package store

func Computed1[T0, O comparable](
	st *Store,
	arg0 Readable[T0],
	get func(T0) O,
) *ReadonlySignal[O] {
	return Computed(st, func() O {
		return get(
			arg0.Value(),
		)
	}, arg0)
}

func Computed2[T0, T1, O comparable](
	st *Store,
	arg0 Readable[T0],
	arg1 Readable[T1],
	get func(T0, T1) O,
) *ReadonlySignal[O] {
	return Computed(st, func() O {
		return get(
			arg0.Value(),
			arg1.Value(),
		)
	}, arg0, arg1)
}

func Computed3[T0, T1, T2, O comparable](
	st *Store,
	arg0 Readable[T0],
	arg1 Readable[T1],
	arg2 Readable[T2],
	get func(T0, T1, T2) O,
) *ReadonlySignal[O] {
	return Computed(st, func() O {
		return get(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
		)
	}, arg0, arg1, arg2)
}

func Computed4[T0, T1, T2, T3, O comparable](
	st *Store,
	arg0 Readable[T0],
	arg1 Readable[T1],
	arg2 Readable[T2],
	arg3 Readable[T3],
	get func(T0, T1, T2, T3) O,
) *ReadonlySignal[O] {
	return Computed(st, func() O {
		return get(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
		)
	}, arg0, arg1, arg2, arg3)
}

func Computed5[T0, T1, T2, T3, T4, O comparable](
	st *Store,
	arg0 Readable[T0],
	arg1 Readable[T1],
	arg2 Readable[T2],
	arg3 Readable[T3],
	arg4 Readable[T4],
	get func(T0, T1, T2, T3, T4) O,
) *ReadonlySignal[O] {
	return Computed(st, func() O {
		return get(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
			arg4.Value(),
		)
	}, arg0, arg1, arg2, arg3, arg4)
}

func Computed6[T0, T1, T2, T3, T4, T5, O comparable](
	st *Store,
	arg0 Readable[T0],
	arg1 Readable[T1],
	arg2 Readable[T2],
	arg3 Readable[T3],
	arg4 Readable[T4],
	arg5 Readable[T5],
	get func(T0, T1, T2, T3, T4, T5) O,
) *ReadonlySignal[O] {
	return Computed(st, func() O {
		return get(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
			arg4.Value(),
			arg5.Value(),
		)
	}, arg0, arg1, arg2, arg3, arg4, arg5)
}

func Computed7[T0, T1, T2, T3, T4, T5, T6, O comparable](
	st *Store,
	arg0 Readable[T0],
	arg1 Readable[T1],
	arg2 Readable[T2],
	arg3 Readable[T3],
	arg4 Readable[T4],
	arg5 Readable[T5],
	arg6 Readable[T6],
	get func(T0, T1, T2, T3, T4, T5, T6) O,
) *ReadonlySignal[O] {
	return Computed(st, func() O {
		return get(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
			arg4.Value(),
			arg5.Value(),
			arg6.Value(),
		)
	}, arg0, arg1, arg2, arg3, arg4, arg5, arg6)
}

func Computed8[T0, T1, T2, T3, T4, T5, T6, T7, O comparable](
	st *Store,
	arg0 Readable[T0],
	arg1 Readable[T1],
	arg2 Readable[T2],
	arg3 Readable[T3],
	arg4 Readable[T4],
	arg5 Readable[T5],
	arg6 Readable[T6],
	arg7 Readable[T7],
	get func(T0, T1, T2, T3, T4, T5, T6, T7) O,
) *ReadonlySignal[O] {
	return Computed(st, func() O {
		return get(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
			arg4.Value(),
			arg5.Value(),
			arg6.Value(),
			arg7.Value(),
		)
	}, arg0, arg1, arg2, arg3, arg4, arg5, arg6, arg7)
}
