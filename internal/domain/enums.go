package domain

// Layout is the presentation side a project card is rendered on.
type Layout string

const (
	LayoutLeft  Layout = "left"
	LayoutRight Layout = "right"
)

func (l Layout) String() string { return string(l) }

func (l Layout) IsValid() bool {
	switch l {
	case LayoutLeft, LayoutRight:
		return true
	}
	return false
}

// MediaKind distinguishes attachment families; it selects the upload namespace.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

func (k MediaKind) String() string { return string(k) }

func (k MediaKind) IsValid() bool {
	switch k {
	case MediaKindImage, MediaKindVideo:
		return true
	}
	return false
}

// UserRole is the role claim carried by an authenticated identity.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// ConsistencyMode selects how position-mutating operations are isolated.
type ConsistencyMode string

const (
	// ConsistencyRelaxed issues the range shift and the record write as separate statements.
	ConsistencyRelaxed ConsistencyMode = "relaxed"
	// ConsistencySerialized runs both in one transaction under a collection-wide advisory lock.
	ConsistencySerialized ConsistencyMode = "serialized"
)

func (m ConsistencyMode) IsValid() bool {
	switch m {
	case ConsistencyRelaxed, ConsistencySerialized:
		return true
	}
	return false
}
