// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemInfoReader(t *testing.T) {
	t.Run("Linux", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
			reader  = &MemInfoReader{"testdata/meminfo"}
		)

		memInfo, err := reader.Read()
		require.NoError(err)
		require.NotNil(memInfo)
		assert.Equal(uint64(3811572), memInfo.Active)

		memory, err := reader.Memory()
		require.NoError(err)
		assert.Equal(
			Memory{TotalKB: 16316412, FreeKB: 9512344, AvailableKB: 13204768},
			*memory,
		)
	})

	t.Run("Missing", func(t *testing.T) {
		reader := &MemInfoReader{"testdata/nosuch"}
		memory, err := reader.Memory()
		assert.Error(t, err)
		assert.Nil(t, memory)
	})
}
