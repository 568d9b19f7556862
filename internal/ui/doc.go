// Package ui is the terminal front end of the sign-up flow, built on Bubble Tea.
//
// Pieces:
//   - View: a screen with its own Init/Update/View (SignUpView, HomeView)
//   - ScreenStack: route-driven navigation between screens
//   - ModalStack: alerts that take input before the screen below
//   - LoadingIndicator and ToastView: transient feedback drawn over a screen
//   - Presenter: forwards signup.Presenter calls into the program as messages
package ui
