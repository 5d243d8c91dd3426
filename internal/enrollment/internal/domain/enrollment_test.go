// Copyright 2024 BIRU-sketch
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

package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()
	allowed := map[Status][]Status{
		StatusEnrolled:   {StatusInProgress, StatusRejected},
		StatusInProgress: {StatusSubmitted},
		StatusSubmitted:  {StatusApproved, StatusRejected},
	}
	all := []Status{
		StatusEnrolled, StatusInProgress,
		StatusSubmitted, StatusApproved, StatusRejected,
	}
	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to),
				"%s -> %s", from, to)
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusEnrolled.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.False(t, StatusSubmitted.IsTerminal())
}

func TestEnrollment_ValidApplication(t *testing.T) {
	t.Parallel()
	ok := Enrollment{
		Essay:      strings.Repeat("a", 100),
		Motivation: strings.Repeat("b", 50),
		Experience: strings.Repeat("c", 50),
	}
	assert.True(t, ok.ValidApplication())

	testCases := []struct {
		name string
		e    Enrollment
	}{
		{
			name: "短文太短",
			e: Enrollment{
				Essay:      strings.Repeat("a", 99),
				Motivation: strings.Repeat("b", 50),
				Experience: strings.Repeat("c", 50),
			},
		},
		{
			name: "动机太短",
			e: Enrollment{
				Essay:      strings.Repeat("a", 100),
				Motivation: strings.Repeat("b", 49),
				Experience: strings.Repeat("c", 50),
			},
		},
		{
			name: "经验太短",
			e: Enrollment{
				Essay:      strings.Repeat("a", 100),
				Motivation: strings.Repeat("b", 50),
				Experience: strings.Repeat("c", 49),
			},
		},
		{
			// 中文一个字三个字节，99 个字不能凑成 100
			name: "短文按字符数算",
			e: Enrollment{
				Essay:      strings.Repeat("练", 99),
				Motivation: strings.Repeat("b", 50),
				Experience: strings.Repeat("c", 50),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.e.ValidApplication())
		})
	}
}
