/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package charts

// SurfaceID is the element id a chart is drawn into.
type SurfaceID string

// Surfaces known to the analysis page.
const (
	SurfaceGauge    SurfaceID = "riskGauge"
	SurfaceFeatures SurfaceID = "featureBar"
	SurfacePie      SurfaceID = "riskPie"
)

// Layout returns the surfaces the analysis page provides.
func Layout(includePie bool) []SurfaceID {
	ids := []SurfaceID{SurfaceGauge, SurfaceFeatures}
	if includePie {
		ids = append(ids, SurfacePie)
	}

	return ids
}

type mountWaiter struct {
	ids []SurfaceID
	fn  func()
}

// Surfaces tracks which drawing surfaces exist on the page being built.
// Renderers skip surfaces that are not mounted.
type Surfaces struct {
	mounted map[SurfaceID]bool
	waiters []mountWaiter
}

// NewSurfaces returns an empty surface set.
func NewSurfaces() *Surfaces {
	return &Surfaces{mounted: make(map[SurfaceID]bool)}
}

// Mount marks surfaces as present and runs any callbacks that were waiting on them.
func (s *Surfaces) Mount(ids ...SurfaceID) {
	for _, id := range ids {
		s.mounted[id] = true
	}

	pending := s.waiters[:0]
	var ready []func()

	for _, w := range s.waiters {
		if s.allMounted(w.ids) {
			ready = append(ready, w.fn)
			continue
		}

		pending = append(pending, w)
	}

	s.waiters = pending

	for _, fn := range ready {
		fn()
	}
}

// Unmount removes a surface.
func (s *Surfaces) Unmount(id SurfaceID) {
	delete(s.mounted, id)
}

// Mounted reports whether a surface is present.
func (s *Surfaces) Mounted(id SurfaceID) bool {
	return s.mounted[id]
}

// WhenMounted calls fn once every id is mounted. If they already are, fn runs
// immediately.
func (s *Surfaces) WhenMounted(fn func(), ids ...SurfaceID) {
	if s.allMounted(ids) {
		fn()
		return
	}

	s.waiters = append(s.waiters, mountWaiter{ids: ids, fn: fn})
}

func (s *Surfaces) allMounted(ids []SurfaceID) bool {
	for _, id := range ids {
		if !s.mounted[id] {
			return false
		}
	}

	return true
}
