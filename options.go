package heaply

//Option represents a visitor option
type Option func(v *Visitor)

//Options represents visitor options
type Options []Option

//Apply applies options
func (o Options) Apply(v *Visitor) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(v)
	}
}

//WithPlatform sets the foreign platform model
func WithPlatform(platform *Platform) Option {
	return func(v *Visitor) {
		v.platform = platform
	}
}
