package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/mytask-service/internal/api/dto"
)

// storageFailure reports a store error in the response body with a 200
// status. The raw message is the only diagnostic the caller gets.
func storageFailure(c *fiber.Ctx, err error) error {
	return c.JSON(dto.StorageErrorResponse{Error: true, Message: err.Error()})
}

func insertResult(res *mongo.InsertOneResult) dto.InsertResult {
	return dto.InsertResult{Acknowledged: true, InsertedID: idHex(res.InsertedID)}
}

func updateResult(res *mongo.UpdateResult) dto.UpdateResult {
	return dto.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    idHex(res.UpsertedID),
	}
}

func deleteResult(res *mongo.DeleteResult) dto.DeleteResult {
	return dto.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

func idHex(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
