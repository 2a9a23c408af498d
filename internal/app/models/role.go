package models

// RoleAdmin is the only role the application knows: the single configured
// administrator who may mutate exams, files, and quizzes.
const RoleAdmin = "ADMIN"
