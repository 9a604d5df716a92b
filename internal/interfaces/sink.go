package interfaces

// StateSink receives the final key-value sequence of a build. Implementations
// decide how duplicate keys are resolved; the builder only promises delivery
// order.
type StateSink interface {
	Insert(key, value []byte)
}
