// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides the small thread-safe LRU cache shared by the
// asset store and the font measurer.
//
//	c := cache.New[string, image.Image](64)
//	img, err := c.GetOrLoad("K♥", func() (image.Image, error) {
//	    return decode("k_heart.png")
//	})
//
// Loads run outside the cache lock and concurrent loads of one key are
// shared. Failed loads are not cached, so a later call retries.
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
