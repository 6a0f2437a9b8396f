package types

// RemoteField is the read-back projection of a choice field as it exists
// on the platform. Used purely for comparison during reconciliation;
// never stored locally.
type RemoteField struct {
	InternalName string
	Title        string
	Description  string
	Choices      []string
}

// RemoteView is the read-back projection of a view as it exists on the
// platform.
type RemoteView struct {
	Title     string
	ViewQuery string
	Fields    []string
}
