// Package recipeclient is the typed HTTP client for the RecipeBank REST
// API. All methods take a context, return wrapped APIErrors on non-2xx
// responses and never retry on their own.
package recipeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	recipeModel "github.com/remirami/RecipeBank/internal/models/recipe"
	userModel "github.com/remirami/RecipeBank/internal/models/user"
	"github.com/remirami/RecipeBank/pkg/tools/parseErrors"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithTokenSource(source TokenSource) Option {
	return func(c *Client) {
		c.httpClient.Transport = &bearerTransport{source: source}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a pointer to a Client
func New(baseURL string, options ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, option := range options {
		option(client)
	}
	return client
}

var _ Service = (*Client)(nil)

func (c *Client) ListRecipes(ctx context.Context) ([]recipeModel.Recipe, error) {
	var recipes []recipeModel.Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes", nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *Client) GetRecipe(ctx context.Context, id string) (recipeModel.Recipe, error) {
	var recipe recipeModel.Recipe
	if err := c.do(ctx, http.MethodGet, "/recipes/"+url.PathEscape(id), nil, &recipe); err != nil {
		return recipeModel.Recipe{}, err
	}
	return recipe, nil
}

func (c *Client) CreateRecipe(ctx context.Context, req recipeModel.CreateRequest) (string, error) {
	var res recipeModel.CreateResponse
	if err := c.do(ctx, http.MethodPost, "/recipes", req, &res); err != nil {
		return "", err
	}
	return res.ID, nil
}

func (c *Client) UpdateRecipe(ctx context.Context, id string, req recipeModel.UpdateRequest) (recipeModel.Recipe, error) {
	var recipe recipeModel.Recipe
	if err := c.do(ctx, http.MethodPut, "/recipes/"+url.PathEscape(id), req, &recipe); err != nil {
		return recipeModel.Recipe{}, err
	}
	return recipe, nil
}

func (c *Client) DeleteRecipe(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/recipes/"+url.PathEscape(id), nil, nil)
}

// RandomRecipe fetches the full list and picks one entry at random; the
// API has no dedicated endpoint for this.
func (c *Client) RandomRecipe(ctx context.Context) (recipeModel.Recipe, error) {
	recipes, err := c.ListRecipes(ctx)
	if err != nil {
		return recipeModel.Recipe{}, err
	}
	if len(recipes) == 0 {
		return recipeModel.Recipe{}, ErrNoRecipes
	}
	return recipes[rand.Intn(len(recipes))], nil
}

func (c *Client) Search(ctx context.Context, req recipeModel.SearchRequest) ([]recipeModel.Recipe, error) {
	params := url.Values{}
	if req.SearchTerm != "" {
		params.Set("searchTerm", req.SearchTerm)
	}
	if req.Category != "" {
		params.Set("category", req.Category)
	}
	if req.ByLikes {
		params.Set("likes", "true")
	}
	if req.FoodType != "" {
		params.Set("foodType", req.FoodType)
	}
	if req.SubType != "" {
		params.Set("subType", req.SubType)
	}
	if req.DietaryPreference != "" {
		params.Set("dietaryPreference", req.DietaryPreference)
	}
	if req.CookTime != "" {
		params.Set("cookTime", req.CookTime)
	}

	path := "/search"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var recipes []recipeModel.Recipe
	if err := c.do(ctx, http.MethodGet, path, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// RecipeNameExists reports whether a recipe with exactly this name already
// exists, by searching for the name and comparing results case-sensitively.
func (c *Client) RecipeNameExists(ctx context.Context, name string) (bool, error) {
	recipes, err := c.Search(ctx, recipeModel.SearchRequest{SearchTerm: name})
	if err != nil {
		return false, err
	}
	for _, recipe := range recipes {
		if recipe.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (c *Client) Login(ctx context.Context, req userModel.LoginRequest) (userModel.LoginResponse, error) {
	var res userModel.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &res); err != nil {
		return userModel.LoginResponse{}, err
	}
	return res, nil
}

func (c *Client) Register(ctx context.Context, req userModel.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", req, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	req := userModel.ForgotPasswordRequest{Email: email}
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", req, nil)
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	req := userModel.ResetPasswordRequest{NewPassword: newPassword}
	return c.do(ctx, http.MethodPost, "/auth/reset-password/"+url.PathEscape(token), req, nil)
}

func (c *Client) ConfirmEmail(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodGet, "/confirm-email/"+url.PathEscape(token), nil, nil)
}

func (c *Client) Profile(ctx context.Context) (userModel.User, error) {
	var user userModel.User
	if err := c.do(ctx, http.MethodGet, "/user/profile", nil, &user); err != nil {
		return userModel.User{}, err
	}
	return user, nil
}

func (c *Client) UserRecipes(ctx context.Context) ([]recipeModel.Recipe, error) {
	var recipes []recipeModel.Recipe
	if err := c.do(ctx, http.MethodGet, "/user/recipes", nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *Client) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	req := userModel.ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	}
	return c.do(ctx, http.MethodPut, "/user/"+url.PathEscape(userID)+"/change-password", req, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("could not build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(res.Body)
		return &APIError{
			StatusCode: res.StatusCode,
			Message:    parseErrors.Message(data, http.StatusText(res.StatusCode)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}
