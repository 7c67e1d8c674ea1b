package oneof

// ItemsOf normalises a single-or-list value to a list. A single value
// becomes a one-element list.
func ItemsOf[T any](o OneOf[T, []T]) []T {
	if o.isRight {
		return o.right
	}
	return []T{o.left}
}

// ItemsOfListFirst is ItemsOf for unions that try the list shape first.
func ItemsOfListFirst[T any](o OneOf[[]T, T]) []T {
	if o.isRight {
		return []T{o.right}
	}
	return o.left
}

// FromItems wraps items in the list arm. It never produces the single
// arm, even for a one-element list.
func FromItems[T any](items []T) OneOf[T, []T] {
	return Right[T](items)
}

// FromItemsListFirst wraps items in the list arm.
func FromItemsListFirst[T any](items []T) OneOf[[]T, T] {
	return Left[[]T, T](items)
}
