package parse

// Then moves from Result[In] to Result[Out] via onSuccess; a failure passes
// through unchanged.
func Then[In, Out any](input Result[In], onSuccess func(In) Result[Out]) Result[Out] {
	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return FailFrom[In, Out](input)
}

// Map transforms the successful value; a failure passes through unchanged.
func Map[In, Out any](input Result[In], onSuccess func(In) Out) Result[Out] {
	if input.IsSuccess() {
		return Success(onSuccess(input.Result()))
	}
	return FailFrom[In, Out](input)
}

// Recover hands a failure's input and reason to onFailure; a success passes
// through unchanged.
func Recover[T any](input Result[T], onFailure func(input Value, reason string) Result[T]) Result[T] {
	if input.IsSuccess() {
		return input
	}
	return onFailure(input.Input(), input.Reason())
}

// Tee triggers a side effect on success without changing the result.
func Tee[T any](input Result[T], onSuccess func(T)) Result[T] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

// Finally folds both variants into a concrete value. It is the universal
// eliminator the other combinators reduce to.
func Finally[In, Out any](input Result[In],
	onSuccess func(In) Out,
	onFailure func(input Value, reason string) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Input(), input.Reason())
}
