package types

// Library titles covered by the built-in manifest. The libraries
// themselves are pre-existing; sitewright never creates or deletes them.
const (
	LibraryEngineering = "Engineering Documents"
	LibraryProject     = "Project Documents"
)

// withTypeColumn returns the standard displayed columns with the given
// choice column inserted after the filename, which is where library users
// expect it.
func withTypeColumn(column string) []string {
	return []string{"DocIcon", "LinkFilename", column, "Modified", "Editor"}
}

// DefaultManifest returns the built-in desired-state table: the choice
// columns and filtered views provisioned on the document libraries when
// no external manifest is supplied.
func DefaultManifest() Manifest {
	return Manifest{
		Fields: []ChoiceFieldSpec{
			{
				Library:      LibraryEngineering,
				InternalName: "DocumentType",
				DisplayName:  "Document Type",
				Description:  "Classifies engineering documents by kind.",
				Choices:      []string{"Diagram", "Specification", "Datasheet", "Report", "Other"},
			},
			{
				Library:      LibraryEngineering,
				InternalName: "ReviewStatus",
				DisplayName:  "Review Status",
				Description:  "Tracks where a document sits in the review cycle.",
				Choices:      []string{"Draft", "In Review", "Approved", "Superseded"},
			},
			{
				Library:      LibraryProject,
				InternalName: "DocumentType",
				DisplayName:  "Document Type",
				Description:  "Classifies project documents by kind.",
				Choices:      []string{"Plan", "Minutes", "Contract", "Report", "Other"},
			},
			{
				Library:      LibraryProject,
				InternalName: "Confidentiality",
				DisplayName:  "Confidentiality",
				Choices:      []string{"Public", "Internal", "Restricted"},
			},
		},
		Views: []ViewSpec{
			{
				Library: LibraryEngineering,
				Title:   "Diagrams",
				Fields:  withTypeColumn("DocumentType"),
				Filter:  &Eq{Field: "DocumentType", Value: "Diagram"},
			},
			{
				Library: LibraryEngineering,
				Title:   "Specifications",
				Fields:  withTypeColumn("DocumentType"),
				Filter:  &Eq{Field: "DocumentType", Value: "Specification"},
			},
			{
				Library: LibraryEngineering,
				Title:   "Datasheets",
				Fields:  withTypeColumn("DocumentType"),
				Filter:  &Eq{Field: "DocumentType", Value: "Datasheet"},
			},
			{
				Library: LibraryEngineering,
				Title:   "Reports",
				Fields:  withTypeColumn("DocumentType"),
				Filter:  &Eq{Field: "DocumentType", Value: "Report"},
			},
			{
				Library: LibraryEngineering,
				Title:   "Approved",
				Fields:  withTypeColumn("ReviewStatus"),
				Filter:  &Eq{Field: "ReviewStatus", Value: "Approved"},
			},
			{
				Library: LibraryProject,
				Title:   "Plans",
				Fields:  withTypeColumn("DocumentType"),
				Filter:  &Eq{Field: "DocumentType", Value: "Plan"},
			},
			{
				Library: LibraryProject,
				Title:   "Minutes",
				Fields:  withTypeColumn("DocumentType"),
				Filter:  &Eq{Field: "DocumentType", Value: "Minutes"},
			},
			{
				Library: LibraryProject,
				Title:   "Contracts",
				Fields:  withTypeColumn("DocumentType"),
				Filter:  &Eq{Field: "DocumentType", Value: "Contract"},
			},
			{
				Library: LibraryProject,
				Title:   "Reports",
				Fields:  withTypeColumn("DocumentType"),
				Filter:  &Eq{Field: "DocumentType", Value: "Report"},
			},
			{
				Library: LibraryProject,
				Title:   "Restricted",
				Fields:  withTypeColumn("Confidentiality"),
				Filter:  &Eq{Field: "Confidentiality", Value: "Restricted"},
			},
		},
	}
}
