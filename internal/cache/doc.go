// Package cache provides LRU caching for blob blocks.
//
// The cache is keyed by (path, block index) and bounded by a byte capacity.
// It backs the blobstore read-through cache so that repeated column reads
// from remote containers do not re-fetch the same byte ranges.
package cache
