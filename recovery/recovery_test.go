package recovery_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wudi/noisekit/recovery"
)

func TestStrictStrategy(t *testing.T) {
	s := recovery.NewStrictStrategy()
	require.Equal(t, recovery.ActionFail, s.OnError(errors.New("boom"), recovery.Location{Index: 3}))
}

func TestLenientStrategyRecordsFaults(t *testing.T) {
	boom := errors.New("boom")
	s := recovery.NewLenientStrategy()
	action := s.OnError(boom, recovery.Location{Index: 3, Operation: "swap", Component: "textnoise"})
	require.Equal(t, recovery.ActionWarn, action)

	errs := s.Errors()
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], boom)
	require.Equal(t, "[textnoise] swap at index 3: boom", errs[0].Error())
}

func TestLenientStrategyLimitAndConcurrency(t *testing.T) {
	s := &recovery.LenientStrategy{Limit: 10}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.OnError(errors.New("boom"), recovery.Location{Index: i})
		}(i)
	}
	wg.Wait()
	require.Len(t, s.Errors(), 10)
}

func TestActionString(t *testing.T) {
	require.Equal(t, "fail", recovery.ActionFail.String())
	require.Equal(t, "warn", recovery.ActionWarn.String())
	require.Equal(t, "Action(9)", recovery.Action(9).String())
}
