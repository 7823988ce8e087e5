// Copyright 2019 The GadgetCoin Authors
// This file is part of the GadgetCoin library.
//
// The GadgetCoin library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The GadgetCoin library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the GadgetCoin library. If not, see <http://www.gnu.org/licenses/>.

// Package glog is a leveled logging frontend in the style of
// github.com/golang/glog. Call sites guard with V:
//
//	glog.V(logger.Debug).Infof("sealed block %s", hash)
//
// Verbosity defaults to logger.Info and is adjusted with SetV.
package glog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	"github.com/krishnachittur/GadgetCoin/logger"
)

var (
	verbosity int32 = int32(logger.Info)
	out             = log.New(os.Stderr, "", log.LstdFlags)
)

// SetV sets the global verbosity threshold.
func SetV(v int) {
	atomic.StoreInt32(&verbosity, int32(v))
}

// GetV returns the current verbosity threshold.
func GetV() int {
	return int(atomic.LoadInt32(&verbosity))
}

// SetOutput redirects log output, primarily for tests.
func SetOutput(w io.Writer) {
	out.SetOutput(w)
}

// Verbose is a boolean gate returned by V. When false, its logging methods
// are no-ops.
type Verbose bool

// V reports whether messages at the given level should be emitted. Use with
// one of the Verbose methods: glog.V(logger.Core).Infoln(...).
func V(level logger.Level) Verbose {
	return Verbose(int32(level) <= atomic.LoadInt32(&verbosity))
}

// Info logs at the gated level, in the manner of fmt.Print.
func (v Verbose) Info(args ...interface{}) {
	if v {
		out.Output(2, fmt.Sprint(args...))
	}
}

// Infoln logs at the gated level, in the manner of fmt.Println.
func (v Verbose) Infoln(args ...interface{}) {
	if v {
		out.Output(2, fmt.Sprintln(args...))
	}
}

// Infof logs at the gated level, in the manner of fmt.Printf.
func (v Verbose) Infof(format string, args ...interface{}) {
	if v {
		out.Output(2, fmt.Sprintf(format, args...))
	}
}

// Warnf logs a warning at the gated level.
func (v Verbose) Warnf(format string, args ...interface{}) {
	if v {
		out.Output(2, "WARN "+fmt.Sprintf(format, args...))
	}
}

// Errorf logs an error unconditionally.
func Errorf(format string, args ...interface{}) {
	out.Output(2, "ERROR "+fmt.Sprintf(format, args...))
}

// Fatalf logs and terminates the process. Reserved for programmer
// invariant violations.
func Fatalf(format string, args ...interface{}) {
	out.Output(2, "FATAL "+fmt.Sprintf(format, args...))
	os.Exit(1)
}
