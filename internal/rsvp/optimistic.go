package rsvp

// withOptimisticUpdate applies a tentative local change, attempts the external
// commit, and restores the pre-mutation snapshot when the commit fails. The
// rollback must replay the snapshot verbatim, never compute an inverse delta.
func withOptimisticUpdate(apply func(), commit func() error, rollback func()) error {
	apply()
	if err := commit(); err != nil {
		rollback()
		return err
	}
	return nil
}
