package accessibility

// Adapter delivers tree updates to the platform accessibility layer.
//
// UpdateIfActive exists because building a snapshot is not free: when
// no assistive technology is listening the adapter never invokes the
// build callback, so inactive sessions pay nothing per frame.
type Adapter interface {
	Update(update TreeUpdate)
	UpdateIfActive(build func() TreeUpdate)
}

// NullAdapter discards all updates and never reports itself active.
// It is the default when no platform adapter is configured.
type NullAdapter struct{}

func (NullAdapter) Update(TreeUpdate)                {}
func (NullAdapter) UpdateIfActive(func() TreeUpdate) {}
