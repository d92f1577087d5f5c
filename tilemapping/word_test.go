package tilemapping

import (
	"testing"

	"github.com/matryer/is"
)

func TestAppendPrependLeaveReceiver(t *testing.T) {
	is := is.New(t)
	base := MachineWord{1, 2}
	// give the base spare capacity so an in-place append would be visible
	base = append(make(MachineWord, 0, 8), base...)

	a := base.Append(3)
	b := base.Append(4)
	p := base.Prepend(0)

	is.Equal(base, MachineWord{1, 2})
	is.Equal(a, MachineWord{1, 2, 3})
	is.Equal(b, MachineWord{1, 2, 4})
	is.Equal(p, MachineWord{0, 1, 2})
}

func TestJoin(t *testing.T) {
	is := is.New(t)
	is.Equal(Join(MachineWord{1, 17}, 4, MachineWord{0, 10}), MachineWord{1, 17, 4, 0, 10})
	is.Equal(Join(nil, 4, nil), MachineWord{4})
}

func TestCompare(t *testing.T) {
	is := is.New(t)
	is.Equal(MachineWord{1, 2}.Compare(MachineWord{1, 2}), 0)
	is.Equal(MachineWord{1, 2}.Compare(MachineWord{1, 3}), -1)
	is.Equal(MachineWord{1, 2, 0}.Compare(MachineWord{1, 2}), 1)
	is.True(MachineWord{5}.Equal(MachineWord{5}))
}
