// SPDX-License-Identifier: Apache-2.0

// Package stubserver implements a self-contained development backend for the
// docchat client. It exposes the full REST API surface the client consumes,
// including the event-stream chat endpoint, but answers questions with canned
// text instead of real retrieval. All state lives in memory and is lost on
// restart.
package stubserver
