package observable

// PropertyListener receives the name of the property that changed
type PropertyListener func(property string)

// Bindable is embedded by types whose properties notify on change.
// The zero value is ready to use.
type Bindable struct {
	listeners listenerSet[string]
}

// OnPropertyChanged registers fn for every subsequent property change
func (b *Bindable) OnPropertyChanged(fn PropertyListener) Subscription {
	return b.listeners.add(func(name string) { fn(name) })
}

// NotifyPropertyChanged tells listeners that property changed
func (b *Bindable) NotifyPropertyChanged(property string) {
	b.listeners.emit(property)
}

// SetProperty assigns value to *field and notifies b's listeners with name,
// unless the field already holds an equal value. It reports whether the field
// changed.
func SetProperty[T comparable](b *Bindable, field *T, value T, name string) bool {
	if *field == value {
		return false
	}
	*field = value
	b.NotifyPropertyChanged(name)
	return true
}

// PropertyListenerCount returns the number of active property subscriptions
func (b *Bindable) PropertyListenerCount() int {
	return b.listeners.len()
}
