// Package notificationsv1 is the client for the IBM Cloud Security Advisor
// Notifications API. A notification channel forwards findings of the
// selected providers and severities to a webhook.
package notificationsv1
