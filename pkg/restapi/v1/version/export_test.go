/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package version

import "runtime/debug"

func SetBuildInfo(bi *debug.BuildInfo, ok bool) func() {
	prev := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, ok }

	return func() { readBuildInfo = prev }
}
