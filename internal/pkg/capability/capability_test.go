// Copyright 2023 leanmaker
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromTRL(t *testing.T) {
	testCases := []struct {
		name     string
		trl      int
		wantAPI  int
		wantMin  int
		wantMax  int
		wantErr  error
	}{
		{name: "TRL1", trl: 1, wantAPI: 1, wantMin: 20, wantMax: 40},
		{name: "TRL2", trl: 2, wantAPI: 1, wantMin: 20, wantMax: 40},
		{name: "TRL3", trl: 3, wantAPI: 2, wantMin: 40, wantMax: 80},
		{name: "TRL4", trl: 4, wantAPI: 2, wantMin: 40, wantMax: 80},
		{name: "TRL5", trl: 5, wantAPI: 3, wantMin: 80, wantMax: 160},
		{name: "TRL6", trl: 6, wantAPI: 3, wantMin: 80, wantMax: 160},
		{name: "TRL7", trl: 7, wantAPI: 4, wantMin: 160, wantMax: 320},
		{name: "TRL9", trl: 9, wantAPI: 4, wantMin: 160, wantMax: 320},
		{name: "TRL为0非法", trl: 0, wantErr: ErrInvalidTRL},
		{name: "TRL为10非法", trl: 10, wantErr: ErrInvalidTRL},
		{name: "负数非法", trl: -3, wantErr: ErrInvalidTRL},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := FromTRL(tc.trl)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantAPI, b.APILevel)
			assert.Equal(t, tc.wantMin, b.MinHours)
			assert.Equal(t, tc.wantMax, b.MaxHours)
		})
	}
}

func TestBand_Clamp(t *testing.T) {
	b, err := FromTRL(7)
	assert.NoError(t, err)
	testCases := []struct {
		name    string
		hours   int
		wantRes int
	}{
		{name: "低于下界收敛到下界", hours: 50, wantRes: 160},
		{name: "区间内不变", hours: 200, wantRes: 200},
		{name: "高于上界收敛到上界", hours: 400, wantRes: 320},
		{name: "恰好在下界", hours: 160, wantRes: 160},
		{name: "恰好在上界", hours: 320, wantRes: 320},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, b.Clamp(tc.hours))
			assert.True(t, b.Contains(b.Clamp(tc.hours)))
		})
	}
}

func TestBand_Contains(t *testing.T) {
	b, err := FromTRL(5)
	assert.NoError(t, err)
	assert.True(t, b.Contains(80))
	assert.True(t, b.Contains(160))
	assert.False(t, b.Contains(79))
	assert.False(t, b.Contains(161))
}
