package domain

import "fmt"

// SourceProfile names a dataset location and the driver able to read it.
type SourceProfile struct {
	Name     string
	Driver   string
	Path     string
	Encoding string
	Sheet    string
	// AWSProfile selects the shared AWS config profile for s3 locations.
	AWSProfile string
}

func (c SourceProfile) String() string {
	return fmt.Sprintf("%s:%s", c.Driver, c.Name)
}
