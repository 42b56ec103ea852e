package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycollege_backend/internals/constants"
	"mycollege_backend/internals/features/staff/model"
	helper "mycollege_backend/internals/helpers"
)

// In-memory store mirroring the transactional handover the GORM store
// performs.
type mockStaffStore struct {
	rows   map[string]*model.StaffProfileModel
	nextID int
}

func newMockStaffStore() *mockStaffStore {
	return &mockStaffStore{rows: map[string]*model.StaffProfileModel{}}
}

func (s *mockStaffStore) demoteOthers(excludeID string) {
	for id, row := range s.rows {
		if id == excludeID {
			continue
		}
		if row.StaffRole == constants.RoleHOD {
			row.StaffRole = constants.RoleDemotedHOD
		}
		row.StaffIsHOD = false
	}
}

func (s *mockStaffStore) Create(_ context.Context, m *model.StaffProfileModel, handover bool) error {
	if handover {
		s.demoteOthers("")
	}
	s.nextID++
	m.StaffID = fmt.Sprintf("staff-%d", s.nextID)
	cp := *m
	s.rows[m.StaffID] = &cp
	return nil
}

func (s *mockStaffStore) Save(_ context.Context, m *model.StaffProfileModel, handover bool) error {
	if handover {
		s.demoteOthers(m.StaffID)
	}
	cp := *m
	s.rows[m.StaffID] = &cp
	return nil
}

func (s *mockStaffStore) FindByID(_ context.Context, id string) (*model.StaffProfileModel, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, helper.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (s *mockStaffStore) countHODs() int {
	n := 0
	for _, row := range s.rows {
		if row.StaffIsHOD || row.StaffRole == constants.RoleHOD {
			n++
		}
	}
	return n
}

func TestStaffHODHandover(t *testing.T) {
	ctx := context.Background()

	t.Run("appointing a new HOD demotes the old one", func(t *testing.T) {
		store := newMockStaffStore()
		svc := NewStaffService(store)

		old := &model.StaffProfileModel{StaffName: "Dr. Rao", StaffRole: constants.RoleHOD}
		require.NoError(t, svc.Create(ctx, old))
		require.True(t, store.rows[old.StaffID].StaffIsHOD)

		next := &model.StaffProfileModel{StaffName: "Dr. Iyer", StaffRole: constants.RoleHOD}
		require.NoError(t, svc.Create(ctx, next))

		assert.Equal(t, 1, store.countHODs())
		demoted := store.rows[old.StaffID]
		assert.False(t, demoted.StaffIsHOD)
		assert.Equal(t, constants.RoleProfessor, demoted.StaffRole)
	})

	t.Run("HOD role implies the flag", func(t *testing.T) {
		store := newMockStaffStore()
		svc := NewStaffService(store)

		m := &model.StaffProfileModel{StaffName: "Dr. Rao", StaffRole: constants.RoleHOD}
		require.NoError(t, svc.Create(ctx, m))
		assert.True(t, m.StaffIsHOD)
	})

	t.Run("non-HOD writes leave the incumbent alone", func(t *testing.T) {
		store := newMockStaffStore()
		svc := NewStaffService(store)

		hod := &model.StaffProfileModel{StaffName: "Dr. Rao", StaffRole: constants.RoleHOD}
		require.NoError(t, svc.Create(ctx, hod))

		prof := &model.StaffProfileModel{StaffName: "Dr. Iyer", StaffRole: constants.RoleProfessor}
		require.NoError(t, svc.Create(ctx, prof))

		assert.True(t, store.rows[hod.StaffID].StaffIsHOD)
		assert.Equal(t, constants.RoleHOD, store.rows[hod.StaffID].StaffRole)
	})

	t.Run("flag without role also triggers handover", func(t *testing.T) {
		store := newMockStaffStore()
		svc := NewStaffService(store)

		hod := &model.StaffProfileModel{StaffName: "Dr. Rao", StaffRole: constants.RoleHOD}
		require.NoError(t, svc.Create(ctx, hod))

		m := &model.StaffProfileModel{StaffName: "Dr. Iyer", StaffRole: constants.RoleProfessor, StaffIsHOD: true}
		require.NoError(t, svc.Create(ctx, m))

		assert.Equal(t, 1, store.countHODs())
		assert.False(t, store.rows[hod.StaffID].StaffIsHOD)
	})
}

func TestStaffSetHOD(t *testing.T) {
	ctx := context.Background()
	store := newMockStaffStore()
	svc := NewStaffService(store)

	a := &model.StaffProfileModel{StaffName: "Dr. Rao", StaffRole: constants.RoleHOD}
	require.NoError(t, svc.Create(ctx, a))
	b := &model.StaffProfileModel{StaffName: "Dr. Iyer", StaffRole: constants.RoleProfessor}
	require.NoError(t, svc.Create(ctx, b))

	promoted, err := svc.SetHOD(ctx, b.StaffID)
	require.NoError(t, err)
	assert.True(t, promoted.StaffIsHOD)
	assert.Equal(t, 1, store.countHODs())
	assert.Equal(t, constants.RoleProfessor, store.rows[a.StaffID].StaffRole)

	_, err = svc.SetHOD(ctx, "missing")
	assert.ErrorIs(t, err, helper.ErrNotFound)
}
