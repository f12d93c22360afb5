package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/96TSH/nutrimate/internal/errorsx"
	"github.com/96TSH/nutrimate/internal/model"
)

func (s *Store) CreateCourse(ctx context.Context, course *model.Course) error {
	if err := course.Validate(); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Create(course).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errorsx.NewConflictError(errors.New("a course with this title already exists"))
	}
	return err
}

func (s *Store) GetCourse(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *Store) ListCourses(ctx context.Context) ([]*model.Course, error) {
	var courses []*model.Course
	err := s.db.WithContext(ctx).Order("id").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *Store) UpdateCourse(ctx context.Context, course *model.Course) error {
	if err := course.Validate(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Save(course).Error
}

func (s *Store) DeleteCourse(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Course{}, id).Error
}

func (s *Store) CreateRegistration(ctx context.Context, registration *model.CourseRegistration) error {
	return s.db.WithContext(ctx).Create(registration).Error
}

func (s *Store) ListRegistrationsByCustomer(ctx context.Context, customerID uint) ([]*model.CourseRegistration, error) {
	var registrations []*model.CourseRegistration
	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id").
		Find(&registrations).Error
	if err != nil {
		return nil, err
	}
	return registrations, nil
}
