package sprite3d

import "sync"

// task calls fn on every element of data, split in contiguous chunks over
// workersCount goroutines. It returns once every call has returned.
func task[T any](workersCount int, data []T, fn func(data T)) {
	dataSize := len(data)
	if workersCount <= 1 || dataSize <= 1 {
		for _, d := range data {
			fn(d)
		}
		return
	}

	workersCount = min(workersCount, dataSize)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	var wg sync.WaitGroup
	for start := 0; start < dataSize; start += chunkSize {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(data[i])
			}
		}(start, min(start+chunkSize, dataSize))
	}
	wg.Wait()
}
