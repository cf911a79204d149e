/*
Package service exposes the voting façade used by the HTTP handlers (or any
other transport).

Operations: CreateTopic, ListTopics, GetTopic, OpenSession, CloseSession,
CastVote, GetResult. Identity-requiring operations take the opaque voter
identity as their first argument and reject an empty one; verifying that
the token is genuine is the identity provider's concern, upstream of this
package.
*/
package service
