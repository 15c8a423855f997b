// SPDX-License-Identifier: Apache-2.0

// Package client assembles the interactive application: it owns the run
// lifecycle that alternates between the login flow and the main loop, and
// the background health job that runs while a user is signed in.
package client
