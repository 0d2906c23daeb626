// Package opt implements the IR optimization passes that run between
// the Maxwell frontend and the backends: SSA construction, identity
// removal, dead code elimination, and resource usage collection.
package opt
