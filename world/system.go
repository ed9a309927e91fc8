package world

// System defines rules that run over the whole world once per tick, after
// every entity has been updated
type System interface {
	Update(w *World, deltaMS uint64)
}
