// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into the pipeline's Source
// form, using github.com/jfreymuth/oggvorbis.
package vorbis
