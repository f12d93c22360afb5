package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/96TSH/nutrimate/internal/errorsx"
	"github.com/96TSH/nutrimate/internal/ginutil"
	"github.com/96TSH/nutrimate/internal/model"
)

// CreateCustomer is the public account-creation endpoint. Field violations
// come back as a 400 with the per-field message set; duplicates as a 409.
func (s *Service) CreateCustomer(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCustomerRequest
	err := c.BindJSON(&req)
	if err != nil {
		errMsg := "failed to decode create-customer request"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.JSONError(c, http.StatusBadRequest, errMsg+": %v", err)
		return
	}

	if err := req.Validate(); err != nil {
		ginutil.HandleError(c, err)
		return
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		s.Logger.Error("failed to hash password", zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}

	customer := &model.Customer{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Contact:      req.Contact,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         model.RoleUser,
		Address:      req.Address,
	}

	if err := s.Db.CreateCustomer(ctx, customer); err != nil {
		errMsg := "failed to create customer"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}

	ginutil.Created(c, customer, "Account created successfully.")
}

func (s *Service) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := currentIdentity(c)
	if !ok {
		ginutil.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	customer, err := s.Db.GetCustomerByID(ctx, identity.CustomerID)
	if err != nil {
		s.Logger.Error("failed to load customer profile", zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}
	if customer == nil {
		ginutil.HandleError(c, errorsx.NewNotFoundError(errors.New("profile not found")))
		return
	}

	ginutil.JSON(c, customer, "Success")
}

func (s *Service) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	identity, ok := currentIdentity(c)
	if !ok {
		ginutil.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req UpdateProfileRequest
	err := c.BindJSON(&req)
	if err != nil {
		errMsg := "failed to decode update-profile request"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.JSONError(c, http.StatusBadRequest, errMsg+": %v", err)
		return
	}

	if err := req.Validate(); err != nil {
		ginutil.HandleError(c, err)
		return
	}

	customer, err := s.Db.GetCustomerByID(ctx, identity.CustomerID)
	if err != nil {
		s.Logger.Error("failed to load customer profile", zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}
	if customer == nil {
		ginutil.HandleError(c, errorsx.NewNotFoundError(errors.New("profile not found")))
		return
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Contact = req.Contact
	customer.Address = req.Address

	if err := s.Db.UpdateCustomer(ctx, customer); err != nil {
		errMsg := "failed to update customer profile"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}

	ginutil.JSON(c, customer, "Profile updated successfully.")
}

func (s *Service) AdminListCustomers(c *gin.Context) {
	ctx := c.Request.Context()

	customers, err := s.Db.ListCustomers(ctx)
	if err != nil {
		errMsg := "failed to list customers"
		s.Logger.Error(errMsg, zap.Error(err))
		ginutil.HandleError(c, err)
		return
	}

	ginutil.JSON(c, customers, "Success")
}
