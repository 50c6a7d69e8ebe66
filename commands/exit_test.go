package commands

import (
	"fmt"
	"testing"

	"github.com/josephlewis42/echocat/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func ExampleExitStatus() {
	fmt.Println(ExitStatus(7))
	fmt.Println(ExitStatus(-1))
	fmt.Println(ExitStatus(300))

	// Output: 7
	// 255
	// 44
}

func TestExit(t *testing.T) {
	cases := []struct {
		args     []string
		expected int
	}{
		{[]string{"7"}, 7},
		{[]string{"0"}, 0},
		{[]string{"100"}, 100},
		{[]string{"abc"}, 0},
		{[]string{}, 0},
		{[]string{""}, 0},
		{[]string{" 12abc"}, 12},
		{[]string{"-1"}, 255},
		{[]string{"256"}, 0},
		{[]string{"300"}, 44},
		{[]string{"3", "4"}, 3},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.args), func(t *testing.T) {
			cmd := vostest.Command(Exit, "exit", tc.args...)
			stdout, stderr, err := cmd.Output()

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, cmd.ExitStatus)
			assert.Empty(t, stdout)
			assert.Empty(t, stderr)
		})
	}
}
