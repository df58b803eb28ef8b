package domain

type ID string
type Version int

func (vo ID) String() string {
	return string(vo)
}

type Slug string
type DisplayName string
type Description string
