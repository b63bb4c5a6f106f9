package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alimikegami/e-bazaar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewSellerResponseWithPopulatedCategory(t *testing.T) {
	category := domain.Category{ID: primitive.NewObjectID(), Name: "Furniture", Icon: "chair", Color: "#fff"}
	seller := domain.Seller{
		ID:               primitive.NewObjectID(),
		Name:             "Chair",
		Category:         category.ID,
		CategoryDetail:   &category,
		CountInStock:     10,
		User:             primitive.NewObjectID(),
		Status:           domain.DefaultSellerStatus,
		DateCreated:      time.Now(),
		PaymentAccountID: "017",
		VoterID:          "V1",
	}

	res := NewSellerResponse(seller)

	assert.Equal(t, seller.ID.Hex(), res.ID)
	assert.Equal(t, category.ID.Hex(), res.Category.ID)
	assert.Equal(t, "Furniture", res.Category.Name)
	assert.Equal(t, seller.User.Hex(), res.User)
	assert.Equal(t, []string{}, res.Images)
}

func TestNewSellerResponseWithoutPopulatedCategory(t *testing.T) {
	seller := domain.Seller{ID: primitive.NewObjectID(), Category: primitive.NewObjectID()}

	res := NewSellerResponse(seller)

	assert.Equal(t, seller.Category.Hex(), res.Category.ID)
	assert.Empty(t, res.Category.Name)
}

func TestSellerResponseJSONFieldNames(t *testing.T) {
	res := NewSellerResponse(domain.Seller{ID: primitive.NewObjectID(), PaymentAccountID: "017", VoterID: "V1"})

	body, err := json.Marshal(res)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &fields))

	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "bKash")
	assert.Contains(t, fields, "VoterId")
	assert.Contains(t, fields, "countInStock")
	assert.NotContains(t, fields, "_id")
}

func TestNewUserResponseOmitsPasswordHash(t *testing.T) {
	user := domain.User{
		ID:           primitive.NewObjectID(),
		Name:         "Rahim",
		Email:        "rahim@example.com",
		PasswordHash: "$2a$10$secret",
	}

	body, err := json.Marshal(NewUserResponse(user))
	require.NoError(t, err)

	assert.NotContains(t, string(body), "passwordHash")
	assert.NotContains(t, string(body), "$2a$10$secret")
	assert.Contains(t, string(body), user.ID.Hex())
}

func TestNewOrderResponse(t *testing.T) {
	itemID := primitive.NewObjectID()
	productID := primitive.NewObjectID()
	user := domain.User{ID: primitive.NewObjectID(), Name: "Rahim"}

	t.Run("populated items and user", func(t *testing.T) {
		order := domain.Order{
			ID:         primitive.NewObjectID(),
			OrderItems: []primitive.ObjectID{itemID},
			Items:      []domain.OrderItem{{ID: itemID, Quantity: 2, Product: productID}},
			User:       user.ID,
			UserDetail: &user,
			Status:     domain.DefaultOrderStatus,
		}

		res := NewOrderResponse(order)

		require.Len(t, res.OrderItems, 1)
		assert.Equal(t, 2, res.OrderItems[0].Quantity)
		assert.Equal(t, productID.Hex(), res.OrderItems[0].Product)
		assert.Equal(t, "Rahim", res.User.Name)
	})

	t.Run("item ids only", func(t *testing.T) {
		order := domain.Order{ID: primitive.NewObjectID(), OrderItems: []primitive.ObjectID{itemID}, User: user.ID}

		res := NewOrderResponse(order)

		require.Len(t, res.OrderItems, 1)
		assert.Equal(t, itemID.Hex(), res.OrderItems[0].ID)
		assert.Empty(t, res.User.Name)
		assert.Equal(t, user.ID.Hex(), res.User.ID)
	})
}
