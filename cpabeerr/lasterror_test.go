package cpabeerr

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLastErrorPerGoroutine(t *testing.T) {
	require.Nil(t, LastError())

	errA := errors.New("boom a")
	errB := errors.New("boom b")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		SetLast(errA)
		require.Equal(t, errA, LastError())
	}()
	go func() {
		defer wg.Done()
		SetLast(errB)
		require.Equal(t, errB, LastError())
	}()
	wg.Wait()

	require.Nil(t, LastError())
}

func TestLastErrorClear(t *testing.T) {
	SetLast(errors.New("transient"))
	require.NotNil(t, LastError())
	SetLast(nil)
	require.Nil(t, LastError())
}

func TestDeserializeErrorUnwrap(t *testing.T) {
	cause := errors.New("short buffer")
	err := NewDeserializeError("PublicParams.G", cause)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "PublicParams.G")
}

func TestCryptoErrorUnwrap(t *testing.T) {
	cause := errors.New("pairing failed")
	err := NewCryptoError("Encrypt", cause)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "Encrypt")
}
