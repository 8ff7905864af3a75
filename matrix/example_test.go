package matrix_test

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/parmat/matrix"
)

// ExampleMatrix_Batch2DRanges partitions a 4×2 matrix across two workers.
func ExampleMatrix_Batch2DRanges() {
	m, _ := matrix.New([][]int{{1, 2}, {3, 4}, {5, 6}, {7, 8}})

	ranges, _ := m.Batch2DRanges(2)
	for i, r := range ranges {
		fmt.Printf("worker %d: (%d,%d)..(%d,%d)\n", i, r.Start.Row, r.Start.Col, r.End.Row, r.End.Col)
	}

	// Output:
	// worker 0: (0,0)..(1,1)
	// worker 1: (2,0)..(3,1)
}

// ExampleMatrix_ElementsPerWorker shows surplus going to the first workers.
func ExampleMatrix_ElementsPerWorker() {
	m, _ := matrix.New([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	counts, _ := m.ElementsPerWorker(4)
	fmt.Println(counts)

	// Output:
	// [3 2 2 2]
}

// ExampleMatrix_Split fills a matrix concurrently, one goroutine per Segment.
func ExampleMatrix_Split() {
	m, _ := matrix.New([][]float64{{0, 0, 0}, {0, 0, 0}})

	segs, _ := m.Split(3)
	var wg sync.WaitGroup
	for _, s := range segs {
		wg.Add(1)
		go func(s *matrix.Segment[float64]) {
			defer wg.Done()
			s.Apply(func(row, col int, _ float64) float64 { return float64(10*row + col) })
		}(s)
	}
	wg.Wait()

	fmt.Print(m)

	// Output:
	// [0, 1, 2]
	// [10, 11, 12]
}
