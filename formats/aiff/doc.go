// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF streams into the pipeline's Source form,
// using github.com/go-audio/aiff. Only 16-bit PCM files are supported.
package aiff
