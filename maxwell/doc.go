// Package maxwell translates Maxwell shader instructions into IR.
//
// The translator is deliberately naive about data flow: register,
// predicate, and condition code accesses become GetRegister/
// SetRegister-family instructions, and the opt package rewrites them
// into SSA afterwards. Control flow recovery is an external concern;
// TranslateProgram receives the recovered block graph and only lays
// down the terminators it describes.
package maxwell
