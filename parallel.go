package mac

import "sync"

// computeRowsParallel fills the result using multiple goroutines. Rows are
// split into contiguous ranges, one range per worker; ranges don't overlap,
// so no synchronization is needed for writes and the result is bitwise
// identical to computeRows. Falls back to the sequential loop when
// numWorkers <= 1 or there is only one row.
func computeRowsParallel(dst *Matrix, a, b *ModeSet, normsA, normsB []float64, sentinel float64, numWorkers int) {
	if numWorkers <= 1 || dst.rows <= 1 {
		computeRows(dst, a, b, normsA, normsB, sentinel, 0, dst.rows)
		return
	}

	var wg sync.WaitGroup

	rowsPerWorker := (dst.rows + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > dst.rows {
			endRow = dst.rows
		}
		if startRow >= dst.rows {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			computeRows(dst, a, b, normsA, normsB, sentinel, start, end)
		}(startRow, endRow)
	}

	wg.Wait()
}
