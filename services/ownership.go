package services

import "go.mongodb.org/mongo-driver/bson/primitive"

// Owned is any resource gated to the single user that created it.
type Owned interface {
	OwnerID() primitive.ObjectID
}

// CanAccess is the ownership policy applied to every read, update and
// delete of workouts, goals and meals: the requester must be the owner.
func CanAccess(requester primitive.ObjectID, resource Owned) bool {
	return resource.OwnerID() == requester
}
