package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Config represents the configuration for the structura client
type Config struct {
	// BaseURL is the base URL of the structura API
	BaseURL string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
	// Token is an optional bearer token sent with every request
	Token string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client talks to the structura HTTP API.
type Client struct {
	config *Config
	client *http.Client
	token  string
}

// NewClient creates a new client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
		token:  config.Token,
	}
}

// Token returns the bearer token the client currently sends.
func (c *Client) Token() string {
	return c.token
}

// SetToken replaces the bearer token, e.g. to act as another user.
func (c *Client) SetToken(token string) {
	c.token = token
}

type User struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	LastName    string     `json:"last_name"`
	Info        string     `json:"info"`
	RoleID      *uuid.UUID `json:"role_id"`
	IsActive    bool       `json:"is_active"`
	IsSuperuser bool       `json:"is_superuser"`
}

type Structure struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Info string    `json:"info"`
}

type Role struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Info             string    `json:"info"`
	StructureID      uuid.UUID `json:"structure_id"`
	IsStructureAdmin bool      `json:"is_structure_admin"`
}

type Relation struct {
	ID            uuid.UUID `json:"id"`
	SuperiorID    uuid.UUID `json:"superior_id"`
	SubordinateID uuid.UUID `json:"subordinate_id"`
	StructureID   uuid.UUID `json:"structure_id"`
	Superior      *Role     `json:"superior,omitempty"`
	Subordinate   *Role     `json:"subordinate,omitempty"`
}

type Hierarchy struct {
	Structure *Structure  `json:"structure"`
	Roles     []*Role     `json:"roles"`
	Relations []*Relation `json:"relations"`
}

type WorkTask struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Comments    string    `json:"comments"`
	Status      string    `json:"status"`
	Rate        int       `json:"rate"`
	CompleteBy  time.Time `json:"complete_by"`
	CreatorID   uuid.UUID `json:"creator_id"`
	AssigneeID  uuid.UUID `json:"assignee_id"`
}

type Meeting struct {
	ID           uuid.UUID `json:"id"`
	Topic        string    `json:"topic"`
	Info         string    `json:"info"`
	MeetDatetime time.Time `json:"meet_datetime"`
	CreatorID    uuid.UUID `json:"creator_id"`
	Users        []User    `json:"users,omitempty"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	LastName string `json:"last_name,omitempty"`
	Info     string `json:"info,omitempty"`
}

// Register creates an account. It does not log the client in.
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, errors.New("email, password, and name are required")
	}

	var resp struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Login exchanges credentials for a token and stores it on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	var resp struct {
		User  *User  `json:"user"`
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}

	c.token = resp.Token
	return resp.User, nil
}

// Logout revokes the current token and forgets it.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// CreateStructure creates a structure owned by the caller, who becomes its
// administrator.
func (c *Client) CreateStructure(ctx context.Context, name, info string) (*Structure, *Role, error) {
	if name == "" {
		return nil, nil, errors.New("name is required")
	}

	var resp struct {
		Structure *Structure `json:"structure"`
		Role      *Role      `json:"role"`
	}
	body := map[string]string{"name": name, "info": info}
	if err := c.do(ctx, http.MethodPost, "/api/structures/", body, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Structure, resp.Role, nil
}

func (c *Client) MyStructure(ctx context.Context) (*Structure, error) {
	var resp struct {
		Structure *Structure `json:"structure"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/structures/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Structure, nil
}

func (c *Client) Hierarchy(ctx context.Context) (*Hierarchy, error) {
	var resp Hierarchy
	if err := c.do(ctx, http.MethodGet, "/api/structures/hierarchy", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateRoleRequest adds a role to the caller's structure. A non-nil UserID
// binds the role to that role-less user.
type CreateRoleRequest struct {
	Name   string    `json:"name"`
	Info   string    `json:"info,omitempty"`
	UserID uuid.UUID `json:"user_id"`
}

func (c *Client) CreateRole(ctx context.Context, req *CreateRoleRequest) (*Role, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	var resp struct {
		Role *Role `json:"role"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/roles/", req, &resp); err != nil {
		return nil, err
	}
	return resp.Role, nil
}

func (c *Client) DeleteRole(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/roles/"+id.String(), nil, nil)
}

// CreateRelation makes superior the direct superior of subordinate.
func (c *Client) CreateRelation(ctx context.Context, superior, subordinate uuid.UUID) (*Relation, error) {
	var resp struct {
		Relation *Relation `json:"relation"`
	}
	body := map[string]uuid.UUID{"superior_id": superior, "subordinate_id": subordinate}
	if err := c.do(ctx, http.MethodPost, "/api/relations/", body, &resp); err != nil {
		return nil, err
	}
	return resp.Relation, nil
}

func (c *Client) DeleteRelation(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/relations/"+id.String(), nil, nil)
}

func (c *Client) MySubordinates(ctx context.Context) ([]*Relation, error) {
	return c.relations(ctx, "/api/relations/me-subordinate")
}

func (c *Client) MySuperiors(ctx context.Context) ([]*Relation, error) {
	return c.relations(ctx, "/api/relations/me-superior")
}

func (c *Client) relations(ctx context.Context, path string) ([]*Relation, error) {
	var resp struct {
		Relations []*Relation `json:"relations"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Relations, nil
}

// CreateTaskRequest represents a work task creation request
type CreateTaskRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Comments    string    `json:"comments,omitempty"`
	CompleteBy  time.Time `json:"complete_by"`
	AssigneeID  uuid.UUID `json:"assignee_id"`
}

func (c *Client) CreateTask(ctx context.Context, req *CreateTaskRequest) (*WorkTask, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}
	if req.Name == "" || req.AssigneeID == uuid.Nil || req.CompleteBy.IsZero() {
		return nil, errors.New("name, assignee_id, and complete_by are required")
	}
	return c.task(ctx, http.MethodPost, "/api/work-tasks/", req)
}

// UpdateTaskStatus moves an assigned task along CREATED, IN_WORK, COMPLETED.
func (c *Client) UpdateTaskStatus(ctx context.Context, id uuid.UUID, status string) (*WorkTask, error) {
	return c.task(ctx, http.MethodPatch, "/api/work-tasks/"+id.String()+"/status", map[string]string{"status": status})
}

// RateTask sets the 1..3 rate of a task the caller created.
func (c *Client) RateTask(ctx context.Context, id uuid.UUID, rate int) (*WorkTask, error) {
	return c.task(ctx, http.MethodPatch, "/api/work-tasks/"+id.String()+"/rate", map[string]int{"rate": rate})
}

func (c *Client) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/work-tasks/"+id.String(), nil, nil)
}

func (c *Client) AssignedTasks(ctx context.Context) ([]*WorkTask, error) {
	return c.tasks(ctx, "/api/work-tasks/assigned")
}

func (c *Client) CreatedTasks(ctx context.Context) ([]*WorkTask, error) {
	return c.tasks(ctx, "/api/work-tasks/created")
}

func (c *Client) task(ctx context.Context, method, path string, body any) (*WorkTask, error) {
	var resp struct {
		Task *WorkTask `json:"task"`
	}
	if err := c.do(ctx, method, path, body, &resp); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

func (c *Client) tasks(ctx context.Context, path string) ([]*WorkTask, error) {
	var resp struct {
		Tasks []*WorkTask `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// MyRating returns the caller's average rate over the rating window.
func (c *Client) MyRating(ctx context.Context) (float64, error) {
	return c.rating(ctx, "/api/work-tasks/rating/me")
}

// TeamRating returns the caller's structure average rate over the rating window.
func (c *Client) TeamRating(ctx context.Context) (float64, error) {
	return c.rating(ctx, "/api/work-tasks/rating/team")
}

func (c *Client) rating(ctx context.Context, path string) (float64, error) {
	var resp struct {
		Rating float64 `json:"rating"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Rating, nil
}

func (c *Client) CreateMeeting(ctx context.Context, topic, info string, at time.Time) (*Meeting, error) {
	if topic == "" || at.IsZero() {
		return nil, errors.New("topic and meet_datetime are required")
	}

	var resp struct {
		Meeting *Meeting `json:"meeting"`
	}
	body := map[string]any{"topic": topic, "info": info, "meet_datetime": at}
	if err := c.do(ctx, http.MethodPost, "/api/meetings/", body, &resp); err != nil {
		return nil, err
	}
	return resp.Meeting, nil
}

func (c *Client) AddMeetingParticipant(ctx context.Context, meetingID, userID uuid.UUID) error {
	return c.do(ctx, http.MethodPost, "/api/meetings/"+meetingID.String()+"/participants/"+userID.String(), nil, nil)
}

func (c *Client) RemoveMeetingParticipant(ctx context.Context, meetingID, userID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/meetings/"+meetingID.String()+"/participants/"+userID.String(), nil, nil)
}

// MyMeetings lists the caller's upcoming meetings, or only today's when today is set.
func (c *Client) MyMeetings(ctx context.Context, today bool) ([]*Meeting, error) {
	path := "/api/meetings/my"
	if today {
		path += "?" + url.Values{"today": {strconv.FormatBool(true)}}.Encode()
	}

	var resp struct {
		Meetings []*Meeting `json:"meetings"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Meetings, nil
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
	Code       string `json:"error_code,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// do sends body as JSON to path and decodes a successful response into out.
// A nil body sends no payload and a nil out discards the response.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		apiErr := &APIError{}
		if err := json.NewDecoder(httpResp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("request failed with status code %d", httpResp.StatusCode)
		}
		apiErr.StatusCode = httpResp.StatusCode
		return apiErr
	}

	if out == nil || httpResp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
