package domain

import (
	"time"

	"formflow-server/internal/infra/utils"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

type Form struct {
	ID                       shareddomain.ID
	TenantID                 shareddomain.ID
	Title                    string
	Description              string
	Header                   string
	IsActive                 bool
	IsPublished              bool
	AllowMultipleSubmissions bool
	RequiresApproval         bool
	CreatedBy                shareddomain.ID
	Version                  int
	Fields                   []Field
	CreatedAt                time.Time
	UpdatedAt                time.Time
	PublishedAt              *time.Time
	DeletedAt                *time.Time
}

func (f *Form) IsDeleted() bool {
	return f.DeletedAt != nil
}

func (f *Form) Publish() {
	now := time.Now()
	f.IsPublished = true
	f.PublishedAt = utils.TimePtr(now)
	f.UpdatedAt = now
}

func (f *Form) Unpublish() {
	f.IsPublished = false
	f.UpdatedAt = time.Now()
}

func (f *Form) SoftDelete() {
	now := time.Now()
	f.DeletedAt = utils.TimePtr(now)
	f.IsActive = false
	f.IsPublished = false
	f.UpdatedAt = now
}

// FieldByID resolves a field definition by id.
func (f *Form) FieldByID(id shareddomain.ID) (Field, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}

func NewFormBuilder() *formBuilder {
	return &formBuilder{}
}

type formBuilder struct {
	actions []formHandler
}

type formHandler func(f *Form) error

func (b *formBuilder) WithTenantID(tenantID shareddomain.ID) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.TenantID = tenantID
		return nil
	})
	return b
}

func (b *formBuilder) WithTitle(title string) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.Title = title
		return nil
	})
	return b
}

func (b *formBuilder) WithDescription(description string) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.Description = description
		return nil
	})
	return b
}

func (b *formBuilder) WithHeader(header string) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.Header = header
		return nil
	})
	return b
}

func (b *formBuilder) WithCreatedBy(userID shareddomain.ID) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.CreatedBy = userID
		return nil
	})
	return b
}

func (b *formBuilder) WithAllowMultipleSubmissions(allow bool) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.AllowMultipleSubmissions = allow
		return nil
	})
	return b
}

func (b *formBuilder) WithRequiresApproval(requires bool) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.RequiresApproval = requires
		return nil
	})
	return b
}

func (b *formBuilder) WithFields(fields []Field) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		now := time.Now()
		f.Fields = make([]Field, len(fields))
		copy(f.Fields, fields)
		for i := range f.Fields {
			if f.Fields[i].ID == "" {
				f.Fields[i].ID = shareddomain.ID(utils.GenerateUUID())
			}
			f.Fields[i].FormID = f.ID
			f.Fields[i].CreatedAt = now
			f.Fields[i].UpdatedAt = now
		}
		return nil
	})
	return b
}

func (b *formBuilder) Build() (Form, error) {
	now := time.Now()
	result := Form{
		ID:                       shareddomain.ID(utils.GenerateUUID()),
		IsActive:                 true,
		AllowMultipleSubmissions: true,
		Version:                  1,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Form{}, err
		}
	}

	return result, nil
}
