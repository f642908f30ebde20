/**
 * Filename: /Users/bao/code/uniflip/base.go
 * Path: /Users/bao/code/uniflip
 * Created Date: Saturday, March 6th 2021, 9:12:45 pm
 * Author: bao
 *
 * Copyright (c) 2021 Haibao Tang
 */

package uniflip

import (
	"fmt"
	"os"

	logging "github.com/op/go-logging"
)

// Version is the current version of uniflip
const Version = "0.2.0"

var log = logging.MustGetLogger("uniflip")
var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05} %{shortfunc} | %{level:.6s} %{color:reset} %{message}`,
)

// Backend is the default stderr output
var Backend = logging.NewLogBackend(os.Stderr, "", 0)

// BackendFormatter contains the fancy debug formatter
var BackendFormatter = logging.NewBackendFormatter(Backend, format)

// Percentage prints a human readable message of the percentage
func Percentage(a, b int) string {
	return fmt.Sprintf("%d of %d (%.1f %%)", a, b, float64(a)*100./float64(b))
}

// reverseBytes reverses a byte slice in place
func reverseBytes(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
