package telegram

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFSMStateTransitions(t *testing.T) {
	fsm := NewFSM()

	assert.Equal(t, StateNone, fsm.State(1))

	fsm.SetState(1, StateRegAge)
	assert.Equal(t, StateRegAge, fsm.State(1))
	assert.Equal(t, StateNone, fsm.State(2))

	fsm.SetData(1, "age", "30")
	fsm.SetState(1, StateRegGender)
	assert.Equal(t, "30", fsm.Data(1, "age"))

	fsm.Clear(1)
	assert.Equal(t, StateNone, fsm.State(1))
	assert.Equal(t, "", fsm.Data(1, "age"))
}

func TestFSMConcurrentAccess(t *testing.T) {
	fsm := NewFSM()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			fsm.SetState(id, StateWaterCustom)
			fsm.SetData(id, "k", "v")
			_ = fsm.State(id)
			fsm.Clear(id)
		}(int64(i))
	}
	wg.Wait()
}
