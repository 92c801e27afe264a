package observable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type person struct {
	Bindable
	name string
	age  int
}

func (p *person) SetName(v string) bool { return SetProperty(&p.Bindable, &p.name, v, "Name") }
func (p *person) SetAge(v int) bool     { return SetProperty(&p.Bindable, &p.age, v, "Age") }

func TestSetProperty_NotifiesOnlyOnChange(t *testing.T) {
	p := &person{name: "Ada"}
	var changed []string
	p.OnPropertyChanged(func(name string) { changed = append(changed, name) })

	assert.False(t, p.SetName("Ada"))
	assert.True(t, p.SetName("Grace"))
	assert.True(t, p.SetAge(36))
	assert.False(t, p.SetAge(36))

	assert.Equal(t, []string{"Name", "Age"}, changed)
	assert.Equal(t, "Grace", p.name)
}

func TestBindable_Unsubscribe(t *testing.T) {
	p := &person{}
	calls := 0
	sub := p.OnPropertyChanged(func(string) { calls++ })

	p.SetAge(1)
	sub.Cancel()
	p.SetAge(2)

	assert.Equal(t, 1, calls)
}

func TestBindable_NotifyPropertyChangedAlwaysFires(t *testing.T) {
	var b Bindable
	var got []string
	b.OnPropertyChanged(func(name string) { got = append(got, name) })

	b.NotifyPropertyChanged("Image")
	b.NotifyPropertyChanged("Image")

	assert.Equal(t, []string{"Image", "Image"}, got)
}
