package cluster

// The store cluster keeps one bucket per project, the bucket holds the
// dashboard and monitor documents of that project. A meta bucket keeps
// the project index and the usage counters.

// Inf is the cluster interface the board needs from the store.
type Inf interface {
	// Create a bucket, via distributed consensus.
	CreateBucket(name []byte) error

	// Create a bucket via distributed consensus if not exist.
	CreateBucketIfNotExist(name []byte) error

	// Remove a bucket, via distributed consensus.
	RemoveBucket(name []byte) error

	// Get returns the value for the given key.
	View(bucket, key []byte) ([]byte, error)

	// Set sets the value for the given key, via distributed consensus.
	Update(bucket []byte, key []byte, value []byte) error
}

// GetByte return the document doc of the bucket bucketID.
func GetByte(c Inf, bucketID, doc string) ([]byte, error) {
	return c.View([]byte(bucketID), []byte(doc))
}

// SetByte set the document doc to the bucket bucketID.
func SetByte(c Inf, bucketID, doc string, docByte []byte) error {
	return c.Update([]byte(bucketID), []byte(doc), docByte)
}
