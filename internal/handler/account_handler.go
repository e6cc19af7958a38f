package handler

import (
	"context"
	"net/http"

	"github.com/Rich-Wilkyness/social-media-api/shared/cqrs"
	"github.com/Rich-Wilkyness/social-media-api/shared/models"
	"github.com/gin-gonic/gin"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	RegisterAccount(context.Context, cqrs.RegisterAccountCommand) (*models.Account, error)
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	Login(context.Context, cqrs.LoginQuery) (*models.Account, error)
}

// AccountHandler serves registration and login.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
}

type AccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

// Register answers 200 with the new account, or 400 with an empty body for
// any rejection, including store failures.
func (h *AccountHandler) Register(c *gin.Context) {
	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	account, err := h.commands.RegisterAccount(c.Request.Context(), cqrs.RegisterAccountCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, account)
}

// Login answers 200 with the matching account, or 401 with an empty body.
func (h *AccountHandler) Login(c *gin.Context) {
	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	account, err := h.queries.Login(c.Request.Context(), cqrs.LoginQuery{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	c.JSON(http.StatusOK, account)
}
