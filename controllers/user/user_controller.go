package controllers

import (
	"context"
	"os"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"storefront-api/configs"
	"storefront-api/models"
	"storefront-api/responses"
	"storefront-api/services"
)

var userCollection *mongo.Collection = configs.GetCollection(configs.DB, "users")

var jwtSecret = os.Getenv("JWT_SECRET")

// Regular expression for validating email format
var emailRegex = regexp.MustCompile(`^(([^<>()[\]\.,;:\s@\"]+(\.[^<>()[\]\.,;:\s@\"]+)*)|(\".+\"))@(([^<>()[\]\.,;:\s@\"]+\.)+[^<>()[\]\.,;:\s@\"]{2,})$`)

// UserSignUp registers a new account. The registration form carries its own
// consent checkbox; submission is blocked until it is ticked, regardless of
// the sitewide banner choice.
func UserSignUp(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Name            string `json:"name" validate:"required"`
		Email           string `json:"email" validate:"required,email"`
		Password        string `json:"password" validate:"required,min=8"`
		ConfirmPassword string `json:"confirmPassword" validate:"required,min=8"`
		ConsentGiven    bool   `json:"consentGiven"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	// Consent is checked before anything else; other field errors do not
	// matter while it is missing.
	if err := services.RequireConsent(reqBody.ConsentGiven); err != nil {
		return responses.FromError(c, err)
	}

	if utf8.RuneCountInString(reqBody.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Passwords must be 8 letters long",
			Result:  nil,
		})
	}

	if reqBody.Password != reqBody.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Passwords do not match",
			Result:  nil,
		})
	}

	if !emailRegex.MatchString(reqBody.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Please enter a valid email address",
			Result:  nil,
		})
	}

	var existingUser models.User
	err := userCollection.FindOne(ctx, bson.M{"email": reqBody.Email}).Decode(&existingUser)

	if err != nil && err != mongo.ErrNoDocuments {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error checking user existence",
			Result:  nil,
		})
	} else if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "User with same email already exists",
			Result:  nil,
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqBody.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error hashing password",
			Result:  nil,
		})
	}

	newUser := models.User{
		Id:       primitive.NewObjectID(),
		Name:     reqBody.Name,
		Email:    reqBody.Email,
		Password: string(hashedPassword),
		Type:     "user",
	}

	_, err = userCollection.InsertOne(ctx, newUser)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error in saving user, please try again later",
		})
	}

	newUser.Password = ""
	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "User created successfully",
		Result:  &fiber.Map{"data": newUser},
	})
}

func UserSignIn(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	var existingUser models.User

	err := userCollection.FindOne(ctx, bson.M{"email": reqBody.Email}).Decode(&existingUser)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "User with this account does not exist",
			Result:  nil,
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching from database",
			Result:  nil,
		})
	}

	err = bcrypt.CompareHashAndPassword([]byte(existingUser.Password), []byte(reqBody.Password))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.StoreResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Incorrect password",
			Result:  nil,
		})
	}

	token, err := createJwt(existingUser.Id.Hex())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.StoreResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error while generating jwt token",
			Result:  nil,
		})
	}

	existingUser.Password = ""
	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "User signed in successfully",
		Result: &fiber.Map{
			"data": fiber.Map{
				"id":    existingUser.Id.Hex(),
				"name":  existingUser.Name,
				"email": existingUser.Email,
				"type":  existingUser.Type,
				"token": token,
			},
		},
	})
}

func createJwt(userId string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userId,
		"exp": time.Now().Add(time.Hour * 720).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// UserSignOut is a no-op server side; the client discards its token.
func UserSignOut(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(responses.StoreResponse{
		Status:  fiber.StatusOK,
		Message: "User signed out successfully",
		Result:  nil,
	})
}
