// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

package course

import "context"

// # Course Data Access

// CourseRepository defines the data access contract for courses.
type CourseRepository interface {

	/*
		ListCourses returns all courses, newest first, each with its lesson count.

		Returns:
		  - []*Course: Hydrated courses, created_at DESC
		  - error: Storage failures
	*/
	ListCourses(context context.Context) ([]*Course, error)

	/*
		FindCourseByID returns the course with the given ID, including its lesson count.

		Returns:
		  - *Course: Hydrated entity
		  - error: NotFound if missing
	*/
	FindCourseByID(context context.Context, id string) (*Course, error)

	/*
		CourseSlugExists reports whether any course already uses the given slug.

		Returns:
		  - bool: True when occupied
		  - error: Storage failures
	*/
	CourseSlugExists(context context.Context, slug string) (bool, error)

	/*
		CreateCourse persists a new course.

		Returns:
		  - error: Conflict on slug collision
	*/
	CreateCourse(context context.Context, course *Course) error

	/*
		UpdateCourse persists changes to an existing course.

		Returns:
		  - error: NotFound if missing
	*/
	UpdateCourse(context context.Context, course *Course) error

	/*
		DeleteCourse removes a course permanently. Owned lessons cascade.

		Returns:
		  - error: NotFound if missing
	*/
	DeleteCourse(context context.Context, id string) error
}

// # Lesson Data Access

// LessonRepository defines the data access contract for lessons.
//
// All single-lesson operations take the owning course id and match both
// identifiers; a lesson belonging to a different course behaves exactly
// like a missing one.
type LessonRepository interface {

	/*
		ListLessons returns the sidebar projection of a course's lessons.

		Returns:
		  - []*LessonSummary: Sorted by order ASC, stable for equal order
		  - error: Storage failures
	*/
	ListLessons(context context.Context, courseID string) ([]*LessonSummary, error)

	/*
		FindLesson returns the lesson matching BOTH the course and lesson id.

		Returns:
		  - *Lesson: Hydrated entity
		  - error: NotFound if either id does not match
	*/
	FindLesson(context context.Context, courseID, lessonID string) (*Lesson, error)

	/*
		LessonSlugExists reports whether a slug is taken by any lesson other
		than excludeID (pass "" to check against all lessons).

		Returns:
		  - bool: True when occupied
		  - error: Storage failures
	*/
	LessonSlugExists(context context.Context, slug, excludeID string) (bool, error)

	/*
		CreateLesson persists a new lesson.

		Returns:
		  - error: Conflict on slug collision or missing course
	*/
	CreateLesson(context context.Context, lesson *Lesson) error

	/*
		UpdateLesson persists changes to the lesson matching both ids.

		Returns:
		  - error: NotFound if either id does not match
	*/
	UpdateLesson(context context.Context, lesson *Lesson) error

	/*
		DeleteLesson removes the lesson matching both ids.

		Returns:
		  - error: NotFound if either id does not match
	*/
	DeleteLesson(context context.Context, courseID, lessonID string) error
}
