package deque

func CheckInvariants[T comparable](d *Deque[T]) {
	d.checkInvariants()
}
