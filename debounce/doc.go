// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package debounce collapses a rapidly changing value into a stable one.

A Debouncer promotes its latest input to its output only after the input has gone
unchanged for a fixed delay.  Intermediate inputs are never emitted.  Typical uses are
search-as-you-type fields and bursts of file change notifications.

	d := debounce.New("", 300*time.Millisecond)
	defer d.Close()

	d.Set("ca")
	d.Set("cat")

	for term := range d.Updates() {
		// only "cat" arrives, 300ms after the last Set
	}
*/
package debounce
