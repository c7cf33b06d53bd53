package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/samber/mo"

	"github.com/linkdeque/deque-go/deque"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	d := deque.NewWithOptions[int](deque.Options{Log: log})
	for _, v := range []int{1, 2, 3} {
		fmt.Println("PushBack:", d.PushBack(v), d)
	}
	fmt.Println("Concat:", d.Concat(d))

	for _, v := range []int{4, 5, 6} {
		fmt.Println("PushFront:", d.PushFront(v), d)
	}
	printPop("PopFront:", d.PopFront(), d)
	printPop("PopBack:", d.PopBack(), d)
	fmt.Println("PushBack:", d.PushBack(7), d)
	fmt.Println("PushFront:", d.PushFront(8), d)
	for i := 0; i < 4; i++ {
		printPop("PopFront:", d.PopFront(), d)
	}
	for i := 0; i < 2; i++ {
		printPop("PopBack:", d.PopBack(), d)
	}

	fmt.Println("PushBack:", d.PushBack(11), d)
	fmt.Println("Last:", d.Last())
	fmt.Println("PushBack:", d.PushBack(12), d)
	fmt.Println("Last:", d.Last())

	d.Clear()
	d.Extend(slices.Values([]int{1, 2, 3}))
	d.ExtendFront(slices.Values([]int{3, 4, 5, 6}))
	fmt.Println("Extended:", d)
	fmt.Println("Copy:", d.Copy())
	fmt.Println("Count:", d.Count(3), d.Count(1), d.Count(0))

	idx, _ := d.Index(3)
	fmt.Println("Index(3):", idx)
	idx, _ = d.IndexRange(3, 4, mo.None[int]())
	fmt.Println("IndexRange(3, 4):", idx)
	if _, err := d.Index(0); err != nil {
		log.Error("lookup failed", "error", err)
	}

	b := deque.NewBounded(3, 1, 2, 3)
	b.PushBack(4)
	fmt.Println("Bounded:", b)
}

func printPop(label string, v mo.Option[int], d *deque.Deque[int]) {
	if got, ok := v.Get(); ok {
		fmt.Println(label, got, d)
		return
	}
	fmt.Println(label, "<empty>", d)
}
