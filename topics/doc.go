/*
Package topics implements the topic store: creation, lookup, listing, and
the atomic status transitions the session controller drives.

Status moves forward only (WAITING -> OPEN -> CLOSED). Transition enforces
this with a rank check plus a conditional UPDATE keyed on the current
status, so concurrent transition attempts on the same topic serialize at
the database: one wins, the rest fail with models.ErrInvalidTransition.

CloseExpired and CloseAllExpired are the lazy-expiry and sweeper entry
points; both are conditional updates with the same one-winner property.
*/
package topics
