package parallel

// minBandRows is the smallest band worth handing to another goroutine.
const minBandRows = 16

// Rows calls fn over disjoint row ranges [y0, y1) covering [0, height).
//
// A nil pool, a closed pool, or a short image runs fn once on the calling
// goroutine. Otherwise the rows are split into about two bands per worker
// and Rows returns once every band has finished. fn must only write rows
// inside its own range.
func Rows(pool *WorkerPool, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if pool == nil || !pool.IsRunning() || pool.Workers() < 2 || height < 2*minBandRows {
		fn(0, height)
		return
	}

	bands := min(pool.Workers()*2, height/minBandRows)
	step := (height + bands - 1) / bands

	work := make([]func(), 0, bands)
	for y0 := 0; y0 < height; y0 += step {
		y1 := min(y0+step, height)
		work = append(work, func() { fn(y0, y1) })
	}
	pool.ExecuteAll(work)
}
