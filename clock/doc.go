// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package clock abstracts the time package so that timer driven code can be tested
deterministically.  Production code uses System(), tests use the clocktest package.
*/
package clock
