package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/96TSH/nutrimate/internal/errorsx"
	"github.com/96TSH/nutrimate/internal/ginutil"
	"github.com/96TSH/nutrimate/internal/model"
)

const registrationDateLayout = "2006-01-02"

func (s *Service) ListCourses(c *gin.Context) {
	ctx := c.Request.Context()

	courses, err := s.Db.ListCourses(ctx)
	if err != nil {
		errMsg := "failed to list courses"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}

	ginutil.JSON(c, courses, "Success")
}

func (s *Service) CreateCourse(c *gin.Context) {
	ctx := c.Request.Context()

	var req CourseRequest
	err := c.BindJSON(&req)
	if err != nil {
		errMsg := "failed to decode create-course request"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.JSONError(c, http.StatusBadRequest, errMsg+": %v", err)
		return
	}

	if err := req.Validate(); err != nil {
		ginutil.HandleError(c, err)
		return
	}

	course := &model.Course{
		Title:       req.Title,
		Schedule:    req.Schedule,
		Description: req.Description,
		Cuisine:     req.Cuisine,
		Level:       req.Level,
	}

	if err := s.Db.CreateCourse(ctx, course); err != nil {
		errMsg := "failed to create course"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}

	ginutil.Created(c, course, "Course created successfully.")
}

func (s *Service) UpdateCourse(c *gin.Context) {
	ctx := c.Request.Context()

	courseID, ok := pathID(c)
	if !ok {
		return
	}

	var req CourseRequest
	err := c.BindJSON(&req)
	if err != nil {
		errMsg := "failed to decode update-course request"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.JSONError(c, http.StatusBadRequest, errMsg+": %v", err)
		return
	}

	if err := req.Validate(); err != nil {
		ginutil.HandleError(c, err)
		return
	}

	course, err := s.Db.GetCourse(ctx, courseID)
	if err != nil {
		s.Logger.Error("failed to load course", zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}
	if course == nil {
		ginutil.HandleError(c, errorsx.NewNotFoundError(errors.New("course not found")))
		return
	}

	course.Title = req.Title
	course.Schedule = req.Schedule
	course.Description = req.Description
	course.Cuisine = req.Cuisine
	course.Level = req.Level

	if err := s.Db.UpdateCourse(ctx, course); err != nil {
		errMsg := "failed to update course"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}

	ginutil.JSON(c, course, "Course updated successfully.")
}

func (s *Service) DeleteCourse(c *gin.Context) {
	ctx := c.Request.Context()

	courseID, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.Db.DeleteCourse(ctx, courseID); err != nil {
		errMsg := "failed to delete course"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}

	ginutil.JSON(c, nil, "Course deleted successfully.")
}

// RegisterCourse enrolls the signed-in customer into a course for a chosen
// date.
func (s *Service) RegisterCourse(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := currentIdentity(c)
	if !ok {
		ginutil.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	courseID, ok := pathID(c)
	if !ok {
		return
	}

	// Body is optional; an empty one registers for today.
	var req RegisterCourseRequest
	if c.Request.ContentLength > 0 {
		if err := c.BindJSON(&req); err != nil {
			errMsg := "failed to decode register-course request"
			s.Logger.Error(errMsg, zap.Error(err))
			ginutil.JSONError(c, http.StatusBadRequest, errMsg+": %v", err)
			return
		}
	}

	var err error
	registrationDate := time.Now()
	if req.RegistrationDate != "" {
		registrationDate, err = time.Parse(registrationDateLayout, req.RegistrationDate)
		if err != nil {
			ginutil.JSONError(c, http.StatusBadRequest, "registrationDate must be formatted %s", registrationDateLayout)
			return
		}
	}

	course, err := s.Db.GetCourse(ctx, courseID)
	if err != nil {
		s.Logger.Error("failed to load course", zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}
	if course == nil {
		ginutil.HandleError(c, errorsx.NewNotFoundError(errors.New("course not found")))
		return
	}

	registration := &model.CourseRegistration{
		CustomerID:       identity.CustomerID,
		CourseID:         course.ID,
		RegistrationDate: registrationDate,
	}

	if err := s.Db.CreateRegistration(ctx, registration); err != nil {
		errMsg := "failed to register for course"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}

	ginutil.Created(c, registration, "Course registration created successfully.")
}

func (s *Service) ListRegistrations(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := currentIdentity(c)
	if !ok {
		ginutil.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	registrations, err := s.Db.ListRegistrationsByCustomer(ctx, identity.CustomerID)
	if err != nil {
		errMsg := "failed to list course registrations"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}

	ginutil.JSON(c, registrations, "Success")
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		ginutil.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
